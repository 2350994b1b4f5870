// Package tokens provides the runner showing the daily edit-token quota.
package tokens

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/printers"
)

type Tokens struct {
	Service *app.Service
}

func (n *Tokens) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not count tokens, no service")
	}
	count, err := n.Service.TokensRemaining(ctx)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Tokens(count)
	return nil
}
