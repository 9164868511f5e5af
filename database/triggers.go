package database

import (
	"fmt"

	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

// Tabel yang dijurnal ke db_changes untuk live update.
var journaledTables = []string{"menus", "orders", "cart_items", "info_contacts"}

// ExecuteTriggers memasang trigger INSERT/UPDATE/DELETE yang menulis ke
// db_changes. DDL dibangun per driver karena sintaks trigger SQLite dan
// MySQL berbeda.
func ExecuteTriggers(db *gorm.DB) error {
	dialect := db.Dialector.Name()

	for _, table := range journaledTables {
		for _, action := range []string{"INSERT", "UPDATE", "DELETE"} {
			stmt, err := triggerDDL(dialect, table, action)
			if err != nil {
				return err
			}
			if err := db.Exec(stmt).Error; err != nil {
				utils.ErrorLogger.Errorf("Error executing trigger: %v\nStatement: %s", err, stmt)
				continue
			}
		}
	}

	utils.InfoLogger.Printf("Change journal triggers installed for %d tables", len(journaledTables))
	return nil
}

func triggerDDL(dialect, table, action string) (string, error) {
	name := fmt.Sprintf("trg_%s_%s", table, action)
	ref := "NEW"
	if action == "DELETE" {
		ref = "OLD"
	}

	switch dialect {
	case "sqlite":
		return fmt.Sprintf(`
CREATE TRIGGER IF NOT EXISTS %s AFTER %s ON %s
BEGIN
    INSERT INTO db_changes (table_name, record_id, action_type, changed_at, processed)
    VALUES ('%s', %s.id, '%s', CURRENT_TIMESTAMP, 0);
END;`, name, action, table, table, ref, action), nil

	case "mysql":
		return fmt.Sprintf(`
CREATE TRIGGER IF NOT EXISTS %s AFTER %s ON %s FOR EACH ROW
INSERT INTO db_changes (table_name, record_id, action_type, changed_at, processed)
VALUES ('%s', %s.id, '%s', NOW(), 0);`, name, action, table, table, ref, action), nil
	}

	return "", fmt.Errorf("unsupported dialect for triggers: %s", dialect)
}
