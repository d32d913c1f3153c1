package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Creates the full schema. Safe to re-run; every statement is IF NOT EXISTS.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARBINARY(72) NOT NULL,
	  first_name VARCHAR(100) NULL,
	  last_name VARCHAR(100) NULL,
	  role VARCHAR(16) NOT NULL DEFAULT 'customer',
	  blocked TINYINT(1) NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS categories (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(100) NOT NULL,
	  slug VARCHAR(100) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_categories_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS subcategories (
	  id CHAR(36) NOT NULL,
	  category_id CHAR(36) NOT NULL,
	  name VARCHAR(100) NOT NULL,
	  slug VARCHAR(100) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_subcategories_slug (slug),
	  KEY ix_subcategories_category_id (category_id),
	  CONSTRAINT fk_subcategories_category FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  slug VARCHAR(255) NOT NULL,
	  description TEXT NULL,
	  price_cents INT NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'INR',
	  stock INT NOT NULL DEFAULT 0,
	  category_id CHAR(36) NOT NULL,
	  subcategory_id CHAR(36) NULL,
	  active TINYINT(1) NOT NULL DEFAULT 1,
	  bestseller TINYINT(1) NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_slug (slug),
	  KEY ix_products_category_id (category_id),
	  KEY ix_products_subcategory_id (subcategory_id),
	  CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE RESTRICT,
	  CONSTRAINT fk_products_subcategory FOREIGN KEY (subcategory_id) REFERENCES subcategories(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_images (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  storage_key VARCHAR(512) NOT NULL,
	  url VARCHAR(512) NOT NULL,
	  position INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_product_images_product_id (product_id),
	  CONSTRAINT fk_product_images_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  customer_id CHAR(36) NOT NULL,
	  status VARCHAR(32) NOT NULL,
	  amount_cents INT NOT NULL,
	  currency CHAR(3) NOT NULL DEFAULT 'INR',
	  paid TINYINT(1) NOT NULL DEFAULT 0,
	  payment_method VARCHAR(32) NOT NULL,
	  first_name VARCHAR(100) NOT NULL,
	  last_name VARCHAR(100) NOT NULL,
	  street VARCHAR(255) NOT NULL,
	  city VARCHAR(100) NOT NULL,
	  state VARCHAR(100) NOT NULL,
	  zip VARCHAR(20) NOT NULL,
	  country VARCHAR(100) NOT NULL,
	  phone VARCHAR(32) NOT NULL,
	  email VARCHAR(255) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_orders_customer_id (customer_id),
	  KEY ix_orders_status (status),
	  KEY ix_orders_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_items (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NULL,
	  sku VARCHAR(64) NULL,
	  name VARCHAR(255) NOT NULL,
	  unit_price_cents INT NOT NULL,
	  quantity INT NOT NULL,
	  size VARCHAR(16) NULL,
	  image_url VARCHAR(512) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_items_order_id (order_id),
	  KEY ix_order_items_product_id (product_id),
	  CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_timeline (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  kind VARCHAR(16) NOT NULL,
	  from_status VARCHAR(32) NULL,
	  to_status VARCHAR(32) NULL,
	  actor VARCHAR(64) NOT NULL,
	  note VARCHAR(500) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_timeline_order_id (order_id),
	  CONSTRAINT fk_order_timeline_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS stock_history (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  action VARCHAR(32) NOT NULL,
	  previous_stock INT NOT NULL,
	  new_stock INT NOT NULL,
	  delta INT NOT NULL,
	  actor VARCHAR(64) NOT NULL,
	  note VARCHAR(500) NULL,
	  order_id CHAR(36) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_stock_history_product_id (product_id),
	  KEY ix_stock_history_order_id (order_id),
	  KEY ix_stock_history_created_at (created_at),
	  CONSTRAINT fk_stock_history_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS newsletters (
	  id CHAR(36) NOT NULL,
	  subject VARCHAR(255) NOT NULL,
	  html_body MEDIUMTEXT NOT NULL,
	  text_body MEDIUMTEXT NULL,
	  status VARCHAR(16) NOT NULL DEFAULT 'draft',
	  sent_at DATETIME(3) NULL,
	  sent_count INT NOT NULL DEFAULT 0,
	  failed_count INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  name VARCHAR(200) NULL,
	  subscribed TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_subscribers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS chat_messages (
	  id CHAR(36) NOT NULL,
	  session_id CHAR(36) NOT NULL,
	  role VARCHAR(16) NOT NULL,
	  content TEXT NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_chat_messages_session_id (session_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ schema created successfully")
}
