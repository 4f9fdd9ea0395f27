// Package service provides application-level services that orchestrate the
// term supply, deck assembly, and storage layers into complete operations.
package service
