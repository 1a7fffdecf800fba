package parse

// Config is an interface that all block configuration structs must implement - this includes:
// - storage source config
// - table config
type Config interface {
	Validate() error
	Identifier() string
}
