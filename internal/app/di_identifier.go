package app

import (
	"fmt"
	"sync"

	identifierHTTP "github.com/allisson/idgen/internal/identifier/http"
	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierService "github.com/allisson/idgen/internal/identifier/service"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
)

// identifierComponents holds the lazily created identifier dependencies.
type identifierComponents struct {
	randomSource      identifierService.RandomSource
	generator         *identifierService.Generator
	identifierUseCase identifierUseCase.IdentifierUseCase
	identifierHandler *identifierHTTP.IdentifierHandler

	randomSourceInit      sync.Once
	generatorInit         sync.Once
	identifierUseCaseInit sync.Once
	identifierHandlerInit sync.Once
}

// RandomSource returns the randomness source shared by all schemes. A non-zero
// GeneratorSeed selects a reproducible seeded source.
func (c *Container) RandomSource() identifierService.RandomSource {
	c.randomSourceInit.Do(func() {
		if c.config.GeneratorSeed != 0 {
			c.Logger().Warn("using seeded random source, identifiers are predictable")
			c.randomSource = identifierService.NewSeededSource(c.config.GeneratorSeed)
			return
		}
		c.randomSource = identifierService.NewCryptoSource()
	})
	return c.randomSource
}

// Generator returns the identifier generation engine.
func (c *Container) Generator() *identifierService.Generator {
	c.generatorInit.Do(func() {
		c.generator = identifierService.NewGenerator(
			c.RandomSource(),
			identifierService.WithMaxBatchSize(c.config.GeneratorMaxBatchSize),
		)
	})
	return c.generator
}

// IdentifierDefaults returns the request defaults derived from configuration.
func (c *Container) IdentifierDefaults() dto.Defaults {
	defaults := dto.DefaultDefaults()
	if c.config.GeneratorDefaultNanoIDLength > 0 {
		defaults.NanoIDLength = c.config.GeneratorDefaultNanoIDLength
	}
	if c.config.GeneratorDefaultHashIDMinLength > 0 {
		defaults.HashIDMinLength = c.config.GeneratorDefaultHashIDMinLength
	}
	if c.config.GeneratorDefaultSlugLength > 0 {
		defaults.SlugLength = c.config.GeneratorDefaultSlugLength
	}
	defaults.MaxBatchSize = c.Generator().MaxBatchSize()
	return defaults
}

// IdentifierUseCase returns the identifier use case instance.
func (c *Container) IdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	var err error
	c.identifierUseCaseInit.Do(func() {
		c.identifierUseCase, err = c.initIdentifierUseCase()
		if err != nil {
			c.setInitError("identifierUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("identifierUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.identifierUseCase, nil
}

// IdentifierHandler returns the identifier HTTP handler instance.
func (c *Container) IdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	var err error
	c.identifierHandlerInit.Do(func() {
		c.identifierHandler, err = c.initIdentifierHandler()
		if err != nil {
			c.setInitError("identifierHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("identifierHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.identifierHandler, nil
}

// initIdentifierUseCase creates the identifier use case with all its dependencies.
func (c *Container) initIdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	baseUseCase := identifierUseCase.NewIdentifierUseCase(c.Generator())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identifier use case: %w", err)
		}
		return identifierUseCase.NewIdentifierUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initIdentifierHandler creates the identifier HTTP handler.
func (c *Container) initIdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	useCase, err := c.IdentifierUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identifier use case for identifier handler: %w", err)
	}

	return identifierHTTP.NewIdentifierHandler(useCase, c.IdentifierDefaults(), c.Logger()), nil
}
