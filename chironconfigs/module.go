package chironconfigs

import (
	"github.com/reusee/chiron/configs"
	"github.com/reusee/chiron/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
