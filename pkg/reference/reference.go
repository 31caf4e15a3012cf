package reference

import "github.com/lithammer/shortuuid/v3"

// Generator выдает человекочитаемые номера вида <prefix><shortuuid>
type Generator struct {
	prefix string
}

// NewGenerator создает генератор номеров с заданным префиксом
func NewGenerator(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// Generate возвращает новый случайный номер
func (g *Generator) Generate() string {
	return g.prefix + shortuuid.New()
}
