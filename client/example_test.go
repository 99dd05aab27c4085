package client_test

import (
	"context"
	"fmt"

	"github.com/SenneDW/authkit/broker"
	"github.com/SenneDW/authkit/broker/memory"
	"github.com/SenneDW/authkit/client"
)

// ExampleClient demonstrates the full host flow: construct, initialize,
// enumerate accounts, acquire a token, sign out.
func ExampleClient() {
	ctx := context.Background()

	b := memory.New(memory.WithSignInHandler(
		func(ctx context.Context, params broker.InteractiveParams) (*broker.Account, error) {
			return &broker.Account{Identifier: "u1", Username: "u@example.com"}, nil
		},
	))

	c, err := client.New(broker.Config{
		ClientID:  "abc",
		Authority: "https://login.microsoftonline.com/common",
	}, b)
	if err != nil {
		panic(err)
	}

	if _, err := c.Initialize(ctx); err != nil {
		panic(err)
	}

	accounts, _ := c.Accounts(ctx)
	fmt.Println("accounts before sign-in:", len(accounts))

	res, err := c.AcquireTokenInteractive(ctx, broker.InteractiveParams{Scopes: []string{"User.Read"}})
	if err != nil {
		panic(err)
	}
	fmt.Println("signed in:", res.Account.Username)

	ok, _ := c.SignOut(ctx, broker.SignOutParams{Account: res.Account})
	fmt.Println("signed out:", ok)

	// Output:
	// accounts before sign-in: 0
	// signed in: u@example.com
	// signed out: true
}

// ExampleClient_Initialize shows that initialization is idempotent and safe
// to call from multiple code paths.
func ExampleClient_Initialize() {
	ctx := context.Background()

	c, err := client.New(broker.Config{
		ClientID:  "abc",
		Authority: "https://login.microsoftonline.com/common",
	}, memory.New())
	if err != nil {
		panic(err)
	}

	c, _ = c.Initialize(ctx)
	c, _ = c.Initialize(ctx) // no-op
	fmt.Println("initialized:", c.IsInitialized())

	// Output:
	// initialized: true
}
