package cli

type Context struct {
	LogLevel  *string `env:"PERHAPS_LOG_LEVEL" enum:"error,warn,info,debug,trace" help:"Set the level of logs to output [${enum}]"`
	LogFormat *string `env:"PERHAPS_LOG_FORMAT" default:"default" enum:"default,text,json" help:"Set the format of logs to output [${enum}]"`
}
