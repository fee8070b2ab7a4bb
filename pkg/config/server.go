package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrValidation is the sentinel wrapped by every Server field rejection.
var ErrValidation = errors.New("validation failed")

// Server is the validated host/port holder shared by every service instance.
// Fields are unexported so that every mutation flows through a validating
// setter; values loaded from YAML are validated the same way.
type Server struct {
	host string
	port int
}

// NewServer constructs a Server, validating both fields.
func NewServer(host string, port int) (*Server, error) {
	s := &Server{}
	if err := s.SetHost(host); err != nil {
		return nil, err
	}
	if err := s.SetPort(port); err != nil {
		return nil, err
	}
	return s, nil
}

// Host returns the configured host.
func (s *Server) Host() string {
	return s.host
}

// Port returns the configured port.
func (s *Server) Port() int {
	return s.port
}

// Addr returns the host:port pair as a dialable address string.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// SetHost replaces the host, re-validating on every assignment.
func (s *Server) SetHost(host string) error {
	if err := validateHost(host); err != nil {
		return err
	}
	s.host = host
	return nil
}

// SetPort replaces the port, re-validating on every assignment.
func (s *Server) SetPort(port int) error {
	if err := validatePort(port); err != nil {
		return err
	}
	s.port = port
	return nil
}

// Validate re-checks the currently held values. A zero Server is invalid.
func (s *Server) Validate() error {
	if err := validateHost(s.host); err != nil {
		return err
	}
	return validatePort(s.port)
}

func validateHost(host string) error {
	if strings.TrimSpace(host) == "" {
		return errors.Wrapf(ErrValidation, "field host expects a non-empty hostname, got %q", host)
	}
	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return errors.Wrapf(ErrValidation, "field port expects an integer between 1 and 65535, got %d", port)
	}
	return nil
}

// UnmarshalYAML decodes the holder from its YAML shape and validates the
// decoded values through the same setters used at runtime.
func (s *Server) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if err := s.SetHost(raw.Host); err != nil {
		return err
	}
	return s.SetPort(raw.Port)
}

// MarshalYAML round-trips the holder back to its YAML shape.
func (s Server) MarshalYAML() (interface{}, error) {
	return struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}{Host: s.host, Port: s.port}, nil
}

func (s Server) String() string {
	return fmt.Sprintf("Server(host=%s, port=%d)", s.host, s.port)
}
