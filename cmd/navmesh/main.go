// SPDX-License-Identifier: MIT

// Command navmesh inspects, queries and stores persisted navigation networks.
//
//	navmesh info --file site.yaml
//	navmesh path --file site.yaml 0 12
//	navmesh batch --name quarry --queries routes.txt
//	navmesh store put quarry site.yaml
package main

import (
	"os"
)

func main() {
	root, a := newRootCmd()
	if err := a.execute(root); err != nil {
		os.Exit(1)
	}
}
