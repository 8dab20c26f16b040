// Command realm loads a scenario file and answers queries about its towns,
// vassalships and roads.
//
//	realm --scenario realm.yaml towns --by distance
//	realm --scenario realm.yaml route shortest A C
//	realm --scenario realm.yaml tax A
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
