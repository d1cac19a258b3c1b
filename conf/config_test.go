package conf

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvExpandedReader(t *testing.T) {
	assert := assert.New(t)

	os.Setenv("GREETING", "hello")

	r := NewEnvExpandedReader(strings.NewReader("msg: ${GREETING}\nplain: line\n"))

	bs, err := io.ReadAll(r)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal("msg: hello\nplain: line\n", string(bs))
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	os.Setenv("INSTANCE_NAME", "users")

	cfg, err := LoadConfig("..")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal("users", cfg.Name)

	assert.True(cfg.Transports.HTTP.Enabled)
	assert.Equal(3000, cfg.Transports.HTTP.Port)
	assert.Equal("127.0.0.1:50051", cfg.Transports.GRPC.Address)
	assert.Equal(4000, cfg.Transports.GraphQL.Port)

	assert.Equal(MongoDB, cfg.Persistent.Driver)
	assert.Equal("users", cfg.Persistent.Name)
	assert.Equal("mongodb://localhost:27017", cfg.Persistent.DSN)

	assert.False(cfg.EventBus.Enabled)
}

func TestParsePersistentDriver(t *testing.T) {
	assert := assert.New(t)

	for _, driver := range []PersistentDriver{MongoDB, SQLite, BadgerDB, InMem} {
		parsed, err := ParsePersistentDriver(driver.String())
		if err != nil {
			assert.Fail(err.Error())
			return
		}

		assert.Equal(driver, parsed)
	}

	_, err := ParsePersistentDriver("cassandra")
	assert.Error(err)
}
