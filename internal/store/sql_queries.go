package store

const (
	createUser = `INSERT INTO users (username, password, email, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING username, password, email, first_name, last_name;`

	findUserByUsername = `SELECT username, password, email, first_name, last_name
    FROM users
    WHERE username = $1;`

	deleteUserNotes = `DELETE FROM notes
    WHERE username = $1;`

	deleteUser = `DELETE FROM users
    WHERE username = $1;`

	createNote = `INSERT INTO notes (title, content, username)
    VALUES ($1, $2, $3)
    RETURNING id, title, content, username, created_at, updated_at;`

	findNoteByID = `SELECT id, title, content, username, created_at, updated_at
    FROM notes
    WHERE id = $1;`

	findNotesByOwner = `SELECT id, title, content, username, created_at, updated_at
    FROM notes
    WHERE username = $1
    ORDER BY id;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1;`
)
