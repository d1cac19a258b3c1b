package conf

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var (
	Path string
	Port int
)

func LoadEnv(cli *cli.Context) error {
	path := cli.String("path")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		path = homeDir + "/.users"
	}

	Path = path
	Port = cli.Int("port")
	return nil
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path + "/config.yaml")
	if err != nil {
		f, err = os.Open(path + "/config.example.yaml")
		if err != nil {
			return nil, err
		}
	}
	defer f.Close()

	r := NewEnvExpandedReader(f)

	var cfg *Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

type Config struct {
	Name       string     `yaml:"name"`
	Transports Transports `yaml:"transports"`
	Persistent Persistent `yaml:"persistent"`
	EventBus   EventBus   `yaml:"eventBus"`
}

type Transports struct {
	HTTP    HTTP    `yaml:"http"`
	GRPC    GRPC    `yaml:"grpc"`
	GraphQL GraphQL `yaml:"graphql"`
}

type HTTP struct {
	Enabled bool
	Port    int
}

func (t *HTTP) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	t.Enabled = raw.Enabled
	t.Port = raw.Port

	// default
	if t.Port == 0 {
		t.Port = Port
	}

	if t.Port == 0 {
		t.Port = 3000
	}

	return nil
}

type GRPC struct {
	Enabled bool
	Address string
}

func (t *GRPC) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled bool   `yaml:"enabled"`
		Address string `yaml:"address"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	t.Enabled = raw.Enabled
	t.Address = raw.Address

	if t.Address == "" {
		t.Address = "127.0.0.1:50051"
	}

	return nil
}

type GraphQL struct {
	Enabled bool
	Port    int
}

func (t *GraphQL) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	t.Enabled = raw.Enabled
	t.Port = raw.Port

	if t.Port == 0 {
		t.Port = 4000
	}

	return nil
}

type PersistentDriver int

const (
	MongoDB PersistentDriver = iota
	SQLite
	BadgerDB
	InMem
)

func ParsePersistentDriver(driver string) (PersistentDriver, error) {
	switch driver {
	case "mongo":
		return MongoDB, nil
	case "sqlite":
		return SQLite, nil
	case "badger":
		return BadgerDB, nil
	case "inmem":
		return InMem, nil
	default:
		return -1, errors.New("driver not supported")
	}
}

func (driver PersistentDriver) String() string {
	switch driver {
	case MongoDB:
		return "mongo"
	case SQLite:
		return "sqlite"
	case BadgerDB:
		return "badger"
	case InMem:
		return "inmem"
	default:
		return "unknown"
	}
}

type Persistent struct {
	Driver PersistentDriver
	Name   string // database name, or the file path for sqlite/badger
	DSN    string
	InMem  bool
}

func (p *Persistent) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Driver string `yaml:"driver"`
		Name   string `yaml:"name"`
		DSN    string `yaml:"dsn"`
		InMem  bool   `yaml:"inmem"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	driver, err := ParsePersistentDriver(raw.Driver)
	if err != nil {
		return err
	}

	p.Driver = driver

	p.Name = raw.Name
	if raw.Name == "" {
		p.Name = "users"
	}

	p.DSN = raw.DSN
	if raw.DSN == "" && driver == MongoDB {
		p.DSN = "mongodb://localhost:27017"
	}

	p.InMem = raw.InMem

	return nil
}

type TransportProvider int

const NATS TransportProvider = iota

func ParseTransportProvider(provider string) (TransportProvider, error) {
	switch provider {
	case "nats":
		return NATS, nil
	default:
		return -1, errors.New("provider not supported")
	}
}

func (p TransportProvider) String() string {
	switch p {
	case NATS:
		return "nats"
	default:
		return ""
	}
}

type EventBus struct {
	Enabled  bool
	Provider TransportProvider
}

func (e *EventBus) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Enabled  bool   `yaml:"enabled"`
		Provider string `yaml:"provider"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	e.Enabled = raw.Enabled
	if !raw.Enabled {
		return nil
	}

	provider, err := ParseTransportProvider(raw.Provider)
	if err != nil {
		return err
	}

	e.Provider = provider

	return nil
}
