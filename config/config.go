package config

// Flat flag storage shared by the commands. Each variable is bound to a
// cobra flag in cmd and read wherever the value is needed.
var (
	// AddressesDir is where the per-chain books live. The default of
	// "addresses" relative to the current working directory matches the
	// deploy repo layout this tool is meant to be run from.
	AddressesDir string

	// Force skips interactive confirmation on destructive commands.
	// `chains add --force` has its own flag variable in cmd.
	Force bool

	// JSONOutputFile redirects export output to a file instead of stdout.
	JSONOutputFile string
)
