package database

import (
	"fmt"
	"sort"
	"strings"

	"spec-sync/core/models"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// TableReport describes how one table compares with its model.
type TableReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// SchemaReport aggregates the table reports of every model.
type SchemaReport struct {
	Tables []TableReport `json:"tables"`
}

// OK reports whether every table exists with all expected columns.
func (r SchemaReport) OK() bool {
	for _, t := range r.Tables {
		if !t.Exists || len(t.MissingColumns) > 0 {
			return false
		}
	}
	return true
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		type SQLiteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []SQLiteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Default: col.DefaultVal,
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// InspectSchema compares the live tables with the columns each model expects.
func InspectSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{}
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model: %w", err)
		}

		table := TableReport{Table: stmt.Schema.Table}
		table.Exists = db.Migrator().HasTable(table.Table)
		if !table.Exists {
			table.MissingColumns = append(table.MissingColumns, stmt.Schema.DBNames...)
			sort.Strings(table.MissingColumns)
			report.Tables = append(report.Tables, table)
			continue
		}

		columns, err := GetTableColumns(db, table.Table)
		if err != nil {
			return nil, err
		}

		present := make(map[string]struct{}, len(columns))
		for _, col := range columns {
			present[col.Field] = struct{}{}
		}
		for _, name := range stmt.Schema.DBNames {
			if _, ok := present[strings.ToLower(name)]; !ok {
				table.MissingColumns = append(table.MissingColumns, name)
			}
		}
		sort.Strings(table.MissingColumns)

		report.Tables = append(report.Tables, table)
	}
	return report, nil
}
