package cli

import (
	"slices"
	"strings"

	"github.com/alecthomas/kong"
)

// separate moves every token that is not a flag of app after a "--"
// terminator, so that search arguments beginning with a hyphen (a query
// such as "-v") are taken as positional arguments instead of unknown flags.
//
// Flags keep their relative order, as do positional arguments. The value of
// a non-boolean flag given as a separate token stays with its flag. Args
// are returned unchanged when no positional argument begins with a hyphen.
func separate(app *kong.Application, args []string) []string {
	known := flagNames(app)

	var flags, positional []string

	hyphen := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positional = append(positional, args[i+1:]...)

			for _, p := range args[i+1:] {
				hyphen = hyphen || isHyphenated(p)
			}

			break
		}

		name, _, assigned := strings.Cut(arg, "=")

		flag, ok := known[name]
		if !ok || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			hyphen = hyphen || isHyphenated(arg)

			continue
		}

		flags = append(flags, arg)

		if !assigned && flag.takesValue && i+1 < len(args) &&
			!strings.HasPrefix(args[i+1], "-") {
			i++
			flags = append(flags, args[i])
		}
	}

	if !hyphen {
		return args
	}

	return slices.Concat(flags, []string{"--"}, positional)
}

func isHyphenated(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

type flagName struct {
	takesValue bool
}

// flagNames returns every spelling of the flags of app, including short,
// alias and negated forms.
func flagNames(app *kong.Application) map[string]flagName {
	names := map[string]flagName{}

	for _, group := range app.AllFlags(false) {
		for _, flag := range group {
			fn := flagName{takesValue: !flag.IsBool() && !flag.IsCounter()}

			names["--"+flag.Name] = fn

			for _, alias := range flag.Aliases {
				names["--"+alias] = fn
			}

			if flag.Short != 0 {
				names["-"+string(flag.Short)] = fn
			}

			if flag.Tag != nil && flag.Tag.Negatable != "" {
				names["--no-"+flag.Name] = fn

				if neg := flag.Tag.Negatable; neg != "_" {
					names["--"+neg] = fn
				}
			}
		}
	}

	return names
}
