// Package client provides the public authentication client: a thin facade
// that gates every operation behind a one-time broker setup handshake and
// otherwise forwards parameters and results between the host and the broker
// unchanged.
//
// The client holds no token state of its own. Accounts, tokens, caching,
// and refresh are owned entirely by the broker; the client's only original
// logic is the initialization guard and the sign-out capability dispatch.
//
// # Usage
//
//	c, err := client.New(broker.Config{
//		ClientID:  "abc",
//		Authority: "https://login.microsoftonline.com/common",
//	}, memory.New())
//	if err != nil {
//		return err
//	}
//	if _, err := c.Initialize(ctx); err != nil {
//		return err
//	}
//	result, err := c.AcquireTokenInteractive(ctx, broker.InteractiveParams{Scopes: []string{"User.Read"}})
package client
