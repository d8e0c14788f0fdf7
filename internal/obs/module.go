package obs

import "go.uber.org/fx"

// Module wires the request metrics aggregator.
var Module = fx.Provide(NewMetrics)
