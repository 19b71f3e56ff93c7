//go:build tools
// +build tools

// Keeps mockgen in go.mod for the go:generate line in contract.
package presence_lab

import (
	_ "go.uber.org/mock/mockgen"
)
