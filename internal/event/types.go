// internal/event/types.go
package event

const (
	PathPlanned  EventType = "PathPlanned"  // Путь найден и установлен в очередь
	PathNotFound EventType = "PathNotFound" // Пути нет, персонаж стоит
	CellToggled  EventType = "CellToggled"  // Ячейка заблокирована или разблокирована
	LegCompleted EventType = "LegCompleted" // Персонаж дошёл до очередной точки пути
	LegAbandoned EventType = "LegAbandoned" // Точка пути исчезла, отрезок брошен
	MoveRejected EventType = "MoveRejected" // Прямое движение упёрлось в заблокированную ячейку
)
