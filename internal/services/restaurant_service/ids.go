package services

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator выдает идентификаторы для новых позиций меню и изображений
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator монотонный счетчик: prefix1, prefix2, ...
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return g.prefix + strconv.FormatUint(g.next.Add(1), 10)
}
