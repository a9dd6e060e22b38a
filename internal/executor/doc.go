/*
Package executor sends the request assembled in the URL bar and request pane.

# Request Building

  - A URL without a scheme is sent over http://
  - The request's Query map is merged into the URL query string
  - A Host header only applies when the URL carries no host
  - User-Agent defaults to types.DefaultUserAgent

# Error Handling

Execute returns an error only when the request cannot be built (empty or
unparsable URL, invalid method). Network failures and timeouts are recorded
on Response.Error so the TUI can display them alongside timing information.

# Example Usage

	req := types.NewRequest()
	req.URL = "api.example.com/users"
	req.Query["page"] = "2"

	resp, err := Execute(ctx, req, 10*time.Second)
	if err != nil {
		return err
	}
	if resp.Error != "" {
		fmt.Println("request failed:", resp.Error)
	}

# Thread Safety

Execute is safe to call concurrently. Each call builds its own client.
*/
package executor
