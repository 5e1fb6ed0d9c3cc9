package errors

import "fmt"

// WrapWithOperation wraps an error with an operation context
func WrapWithOperation(operation, item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s %s", operation, item)
	return Wrap(UnknownErrorCode, message, cause)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileReadErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *ConfigurationError {
	err := &ConfigurationError{
		BaseError: Wrap(ConfigurationErrorCode, fmt.Sprintf("failed to %s configuration '%s'", operation, configType), cause),
		Field:     configType,
	}
	err.WithContext("config_type", configType)
	err.WithContext("operation", operation)
	return err
}
