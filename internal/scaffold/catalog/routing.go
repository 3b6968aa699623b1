// Маршрутизация агентов по ключевым словам
package catalog

import (
	"sort"
	"strings"
)

// MatchAgents подбирает агентов под свободное текстовое описание проекта.
//
// Описание приводится к нижнему регистру, агент попадает в результат,
// если хотя бы одно из его ключевых слов встречается в тексте как
// подстрока. Результат отсортирован по имени агента для детерминизма.
func (c *Catalog) MatchAgents(description string) []Agent {
	text := strings.ToLower(description)

	matched := make([]Agent, 0, len(c.Keywords))
	for agent, keywords := range c.Keywords {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, agent)
				break
			}
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })
	return matched
}

// AgentsForTemplate возвращает агентов, автоматически включаемых для
// данного типа проекта. Для шаблонов вне таблицы auto-enable
// возвращаются агенты самого шаблона.
func (c *Catalog) AgentsForTemplate(name string) ([]Agent, bool) {
	if agents, ok := c.AutoEnable[name]; ok {
		return agents, true
	}
	t, ok := c.Templates[name]
	if !ok {
		return nil, false
	}
	return t.Agents, true
}
