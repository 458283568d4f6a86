// Command campusctl, campus backend'ini terminalden sorgular.
//
//	campusctl workshops list --upcoming
//	campusctl partners list --active
//	campusctl newsletter subscribe --email a@b.com
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
