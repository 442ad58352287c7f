package contact

const (
	SelectActiveContacts = `
		SELECT id, first_name, last_name, contact, birthday, email, picture, is_deleted, created_at, updated_at
		FROM contacts
		WHERE is_deleted = FALSE
		ORDER BY id DESC
	`
	InsertContact = `
		INSERT INTO contacts (first_name, last_name, contact, birthday, email, picture)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, first_name, last_name, contact, birthday, email, picture, is_deleted, created_at, updated_at
	`
	SoftDeleteContactByID = `
		UPDATE contacts
		SET is_deleted = TRUE,
		    updated_at = now()
		WHERE id = $1
	`
	RecoverAllContacts = `
		UPDATE contacts
		SET is_deleted = FALSE,
		    updated_at = now()
		WHERE is_deleted = TRUE
	`
	RecoverContactByID = `
		UPDATE contacts
		SET is_deleted = FALSE,
		    updated_at = now()
		WHERE id = $1
	`
)
