package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UsuarioRepo returns a UsuarioRepository bound to the current transaction.
	UsuarioRepo() UsuarioRepository

	// MascotaRepo returns a MascotaRepository bound to the current transaction.
	MascotaRepo() MascotaRepository

	// CitaRepo returns a CitaRepository bound to the current transaction.
	CitaRepo() CitaRepository

	// VacunaRepo returns a VacunaRepository bound to the current transaction.
	VacunaRepo() VacunaRepository

	// FacturaRepo returns a FacturaRepository bound to the current transaction.
	FacturaRepo() FacturaRepository

	// RecetaRepo returns a RecetaRepository bound to the current transaction.
	RecetaRepo() RecetaRepository

	// DashboardRepo returns a DashboardRepository bound to the current transaction.
	DashboardRepo() DashboardRepository
}
