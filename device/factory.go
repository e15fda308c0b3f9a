package device

// Factory creates devices that all belong to the same family and share its Config.
type Factory interface {
	CreateLightBulb() (LightBulb, error)
	CreateFan() (Fan, error)
	Config() Config
}

// Family is a device vendor able to build a Factory out of a vendor configuration.
type Family interface {
	Name() string
	NewFactory(cfg Config) (Factory, error)
}

type FamilyDocs interface {
	Help() string
}
