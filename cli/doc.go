// Package cli contains the command line interface for minigrep.
//
// # Usage
//
//	minigrep [flags] <query> <file_path> [ignore_case]
//
// The search inputs are positional. A third argument of "true", or the
// environment variable IGNORE_CASE=1, makes the search case-insensitive.
// A query beginning with '-' must follow "--".
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorize text output (default: stderr is a terminal)
//
// Logging flags are applied before the rest of the command line is parsed,
// so parse errors are already reported in the requested format.
//
// # Environment Options
//
//   - --env-file: dotenv file consulted for IGNORE_CASE when it is not set in
//     the process environment
//
// # Configuration Files
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (for example ~/.config/minigrep). Keys are flag
// names; hyphens may be written as underscores, and groups may be nested:
//
//	log:
//	  level: debug
//	  format: json
//	env_file: ~/.minigrep.env
//
// Command-line flags override configuration files.
//
// # Profiling Options
//
// Available only when built with the pprof tag:
//
//   - --pprof-mode: profiling mode (cpu, heap, allocs, ...)
//   - --pprof-dir: profile output directory (default: <user cache dir>/minigrep/pprof)
package cli
