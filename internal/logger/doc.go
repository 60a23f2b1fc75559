// Package logger provides the module's structured logging based on the
// Zap library. It manages a package-level logger with a mutable level,
// supports carrying a logger through a context, and offers plain,
// formatted, and key-value logging helpers at each level.
package logger
