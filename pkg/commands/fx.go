// Package commands bundles the domain command packages. Each package
// contributes its descriptors, executors and namespace help to the fx value
// groups the command registry is built from.
package commands

import (
	"github.com/pseudomuto/tablectl/pkg/commands/appmodule"
	"github.com/pseudomuto/tablectl/pkg/commands/column"
	"github.com/pseudomuto/tablectl/pkg/commands/connection"
	"github.com/pseudomuto/tablectl/pkg/commands/relationship"
	"github.com/pseudomuto/tablectl/pkg/commands/solution"
	"github.com/pseudomuto/tablectl/pkg/commands/unifiedrouting"
	"github.com/pseudomuto/tablectl/pkg/commands/usersettings"
	"go.uber.org/fx"
)

var Module = fx.Module("commands",
	appmodule.Module,
	column.Module,
	connection.Module,
	relationship.Module,
	solution.Module,
	unifiedrouting.Module,
	usersettings.Module,
)
