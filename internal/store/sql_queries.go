package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	getAllUsers = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    ORDER BY user_id;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)
