// internal/types/types.go
package types

// EntityID — идентификатор сущности ECS. Для ячеек карты он же служит
// непрозрачным дескриптором обитателя ячейки.
type EntityID uint64

// NoEntity никогда не выдаётся ECS.
const NoEntity EntityID = 0
