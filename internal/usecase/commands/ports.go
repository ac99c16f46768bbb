package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"smart-parking/internal/domain/user"

	"github.com/google/uuid"
)

// TokenIssuer signs access tokens after a successful login.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

// SimulationObserver is told how many spots one simulation run changed.
type SimulationObserver interface {
	ObserveSimulation(lotID uuid.UUID, changed int)
}

type noopObserver struct{}

func (noopObserver) ObserveSimulation(uuid.UUID, int) {}
