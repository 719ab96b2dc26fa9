// bizerrgen generates classified-error taxonomies from schema files.
//
// A schema (YAML or TOML) declares a target package and one or more
// taxonomies: a code type, auto-numbering configuration, and ordered
// variants. bizerrgen renders them into Go source built on the bizerror
// package: one error type per taxonomy, a code table assigned in
// declaration order, typed code constants, and variant constructors.
//
// Usage:
//
//	bizerrgen generate --out user_errors.go schema.yaml
package main

func main() {
	Execute()
}
