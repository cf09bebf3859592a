// Command pvfit fits photovoltaic curves and selects the best model kind and clustering
// configuration for a sample file.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
