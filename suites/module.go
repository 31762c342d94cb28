package suites

import (
	"github.com/reusee/chiron/chironconfigs"
	"github.com/reusee/chiron/debugs"
	"github.com/reusee/chiron/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs chironconfigs.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
