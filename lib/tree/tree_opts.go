package tree

import (
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

type treeOption struct {
	name   string
	logger *zap.Logger
}

type TreeOpt func(*treeOption)

// WithTreeName names the tree in logs and in the DOT digraph.
func WithTreeName(name string) TreeOpt {
	return func(opt *treeOption) {
		if name != "" {
			opt.name = name
		}
	}
}

// WithTreeLogger enables the debug logs of a tree. The tree is silent by default.
func WithTreeLogger(logger *zap.Logger) TreeOpt {
	return func(opt *treeOption) {
		if logger != nil {
			opt.logger = logger
		}
	}
}

func newTreeOption(name string, opts ...TreeOpt) treeOption {
	opt := treeOption{
		name:   name,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(&opt)
	}
	opt.logger = opt.logger.With(zap.String("tree", opt.name))
	return opt
}

func logUnordered[K infra.OrderedKey](opt *treeOption, op string, key K) {
	opt.logger.Debug("unordered key ignored",
		zap.String("op", op),
		zap.Any("key", key),
	)
}

func logReleased(opt *treeOption, count int64) {
	opt.logger.Debug("tree released", zap.Int64("count", count))
}
