package repositories

// MdtDbRepository groups all repository methods over the application
// database. Methods take an Executor so they run equally well on the
// pool or inside a transaction.
type MdtDbRepository struct{}
