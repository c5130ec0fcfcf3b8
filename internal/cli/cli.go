package cli

var CLI struct {
	Context `embed:""`

	Load LoadCMD `cmd:"" help:"Load person documents and print the outcome of each one" default:"withargs"`
	Demo DemoCMD `cmd:"" help:"Write sample documents to a directory and load them"`
}
