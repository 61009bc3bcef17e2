package ports

import "go.trai.ch/binpack/internal/core/domain"

// Reporter presents a packaging outcome to the user. It replaces the
// original host's modal dialog; success, warning and error are visually
// distinguished.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(outcome domain.Outcome)
}
