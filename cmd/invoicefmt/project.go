package main

import (
	"fmt"

	"github.com/fwojciec/invoicefmt"
)

// Run executes the project command.
func (c *ProjectCmd) Run(deps *Dependencies) error {
	switch {
	case c.Clear:
		if err := deps.Settings.Delete(deps.Ctx, invoicefmt.SettingProjectDir); err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, "Forgot the remembered project folder.")
		return nil

	case c.Set != "":
		if err := deps.Settings.Set(deps.Ctx, invoicefmt.SettingProjectDir, c.Set); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Remembered project folder %s\n", c.Set)
		return nil

	default:
		dir, err := deps.Settings.Get(deps.Ctx, invoicefmt.SettingProjectDir)
		if err != nil {
			if invoicefmt.ErrorCode(err) == invoicefmt.ENOTFOUND {
				fmt.Fprintln(deps.Stdout, "No project folder remembered. Use 'invoicefmt project --set DIR'.")
				return nil
			}
			return err
		}
		fmt.Fprintln(deps.Stdout, dir)
		return nil
	}
}
