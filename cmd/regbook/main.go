// regbook — FCA compliance toolkit for small regulated firms.
// Generates tiered policy documents, keeps the gifts & hospitality
// register and validates approved-persons forms.
package main

import "github.com/regbook/regbook/internal/cli"

func main() {
	cli.Execute()
}
