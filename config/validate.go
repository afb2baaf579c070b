package config

import (
	"github.com/james-lawrence/keystoregen"
	"github.com/james-lawrence/keystoregen/messages"
)

type rule func(Configuration) (warnings, errs []string)

// rules are scoped per subcommand so adding a requirement never touches the
// checks of an unrelated subcommand.
var rules = map[string][]rule{
	keystoregen.SubcommandProvisionCloud: {
		required("stackname", keystoregen.EnvStackName),
	},
}

func required(key, env string) rule {
	return func(c Configuration) (warnings, errs []string) {
		if v, ok := c[key]; !ok || v == nil {
			errs = append(errs, messages.Error(898, env))
		}

		return warnings, errs
	}
}

// Validate applies the rules scoped to the record's subcommand. warnings are
// advisory, errors prevent execution.
func Validate(c Configuration) (warnings, errs []string) {
	for _, r := range rules[c.String("subcommand")] {
		w, e := r(c)
		warnings = append(warnings, w...)
		errs = append(errs, e...)
	}

	return warnings, errs
}
