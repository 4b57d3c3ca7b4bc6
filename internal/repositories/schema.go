package repositories

import "database/sql"

// EnsureSchema creates the owned tables when missing. The UNIQUE key on
// bookings.booking_number backs the allocate/insert conflict-retry loop,
// and the UNIQUE key on invoices.booking_id keeps invoices 1:1 immutable.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			username VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(100) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'user',
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email),
			UNIQUE KEY uniq_username (username)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS experiences (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL DEFAULT '',
			price DECIMAL(12,2) NULL,
			currency VARCHAR(10) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS activities (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			experience_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(12,2) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_experience (experience_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS vendor_profiles (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			company_name VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(500) NOT NULL DEFAULT '',
			gst_number VARCHAR(50) NOT NULL DEFAULT '',
			state VARCHAR(100) NULL,
			logo_url VARCHAR(500) NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_number VARCHAR(20) NOT NULL,
			experience_id BIGINT NOT NULL,
			activity_id BIGINT NULL,
			customer_name VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(100) NOT NULL DEFAULT '',
			customer_email VARCHAR(255) NOT NULL DEFAULT '',
			booking_amount VARCHAR(50) NOT NULL DEFAULT '0',
			total_participants INT NOT NULL DEFAULT 1,
			booking_date VARCHAR(20) NOT NULL DEFAULT '',
			pickup_location VARCHAR(255) NULL,
			slot_start_time VARCHAR(10) NULL,
			slot_end_time VARCHAR(10) NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_booking_number (booking_number),
			KEY idx_experience (experience_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id BIGINT NOT NULL,
			booking_number VARCHAR(20) NOT NULL,
			invoice_number VARCHAR(50) NOT NULL,
			hsn_code VARCHAR(20) NOT NULL,
			invoice_date VARCHAR(20) NOT NULL,
			date_time VARCHAR(50) NOT NULL DEFAULT '',
			customer_name VARCHAR(255) NOT NULL DEFAULT '',
			customer_phone VARCHAR(100) NOT NULL DEFAULT '',
			customer_email VARCHAR(255) NOT NULL DEFAULT '',
			pickup_location VARCHAR(255) NOT NULL DEFAULT '',
			experience_title VARCHAR(255) NOT NULL DEFAULT '',
			activity_name VARCHAR(255) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			currency VARCHAR(10) NOT NULL DEFAULT 'INR',
			vendor_name VARCHAR(255) NOT NULL DEFAULT '',
			company_name VARCHAR(255) NOT NULL DEFAULT '',
			vendor_address VARCHAR(500) NOT NULL DEFAULT '',
			gst_number VARCHAR(50) NOT NULL DEFAULT '',
			place_of_supply VARCHAR(100) NOT NULL DEFAULT '',
			logo_url VARCHAR(500) NOT NULL DEFAULT '',
			booking_amount DOUBLE NOT NULL DEFAULT 0,
			total_participants INT NOT NULL DEFAULT 1,
			original_price_per_person DOUBLE NOT NULL DEFAULT 0,
			ticket_price_per_person DOUBLE NOT NULL DEFAULT 0,
			discount_per_person DOUBLE NOT NULL DEFAULT 0,
			original_base_price_per_person DOUBLE NOT NULL DEFAULT 0,
			original_tax_per_person DOUBLE NOT NULL DEFAULT 0,
			discount_on_base_per_person DOUBLE NOT NULL DEFAULT 0,
			final_net_price_per_person DOUBLE NOT NULL DEFAULT 0,
			final_tax_per_person DOUBLE NOT NULL DEFAULT 0,
			total_price_per_person DOUBLE NOT NULL DEFAULT 0,
			total_base_price DOUBLE NOT NULL DEFAULT 0,
			total_tax_amount DOUBLE NOT NULL DEFAULT 0,
			total_discount DOUBLE NOT NULL DEFAULT 0,
			total_discount_on_base DOUBLE NOT NULL DEFAULT 0,
			total_net_price DOUBLE NOT NULL DEFAULT 0,
			total_amount DOUBLE NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_booking (booking_id),
			UNIQUE KEY uniq_invoice_number (invoice_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
