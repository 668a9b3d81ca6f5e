// Command b2cclaims inspects Azure AD B2C claims from the command line.
//
//	b2cclaims email claims.json        # print the resolved email address
//	b2cclaims decode <token>           # print the payload of a compact token
//	b2cclaims endpoints --tenant contoso --flow B2C_1_signin
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
