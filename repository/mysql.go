package repository

import (
	"database/sql"
	"os"

	"game29/logger"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// InitMySQL 连接 MySQL（仅用于对局结果归档）。
// 未配置 MYSQL_DSN 时跳过，牌局本身不依赖 MySQL。
func InitMySQL() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		logger.Sugar.Info("⚠️ 未配置 MYSQL_DSN，跳过对局结果归档")
		return
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		logger.Sugar.Fatalf("MySQL 打开失败: %v", err)
	}
	if err := db.Ping(); err != nil {
		logger.Sugar.Fatalf("MySQL 连接失败: %v", err)
	}

	const create = `CREATE TABLE IF NOT EXISTS match_results (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		room_id VARCHAR(64) NOT NULL,
		winner_team INT NOT NULL,
		team1_rounds INT NOT NULL,
		team2_rounds INT NOT NULL,
		finished_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(create); err != nil {
		logger.Sugar.Fatalf("建表 match_results 失败: %v", err)
	}

	DB = db
	logger.Sugar.Info("✅ MySQL 连接成功")
}

// SaveMatchResult 归档一场对局的结果
func SaveMatchResult(roomID string, winnerTeam, team1Rounds, team2Rounds int) error {
	if DB == nil {
		return nil
	}
	_, err := DB.Exec(
		"INSERT INTO match_results (room_id, winner_team, team1_rounds, team2_rounds) VALUES (?, ?, ?, ?)",
		roomID, winnerTeam, team1Rounds, team2Rounds,
	)
	return err
}
