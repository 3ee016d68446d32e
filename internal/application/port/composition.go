package port

import "reflect"

//go:generate mockgen -source=composition.go -destination=mock_port/mock_composition.go -package=mock_port

// PageRegistry maps page type names to view-model types.
type PageRegistry interface {
	ResolveViewModelType(pageTypeName string) (reflect.Type, bool)
}

// ViewModelResolver is the composition root seen from the page factory.
type ViewModelResolver interface {
	Resolve(vmType reflect.Type) (any, error)
}
