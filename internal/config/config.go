package config

type ReportFormat uint8

const (
	ReportText ReportFormat = iota
	ReportJSON
)

type Config interface {
	BindAddress() string
	BufferSize() int
	ReportFormat() ReportFormat
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) BindAddress() string        { return c.bindAddress }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) ReportFormat() ReportFormat { return c.reportFormat }
