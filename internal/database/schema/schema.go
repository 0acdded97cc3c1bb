package schema

// SchemaSQL contains the full database schema initialization script.
// Migrations under migrations/ are the source of truth for deployments;
// this constant exists for test containers and the setup command.
const SchemaSQL = `
-- Players

CREATE TABLE IF NOT EXISTS players (
    player_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    display_name VARCHAR(100) NOT NULL DEFAULT '',
    current_exp INTEGER NOT NULL DEFAULT 0,
    total_exp INTEGER NOT NULL DEFAULT 0,
    current_level INTEGER NOT NULL DEFAULT 1,
    honor_points INTEGER NOT NULL DEFAULT 100,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Level thresholds

CREATE TABLE IF NOT EXISTS levels (
    level INTEGER PRIMARY KEY,
    exp_required INTEGER NOT NULL,
    bonus_description TEXT
);

-- EXP ledger

CREATE TABLE IF NOT EXISTS exp_logs (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    activity VARCHAR(30) NOT NULL,
    exp_delta INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_exp_logs_player_created ON exp_logs (player_id, created_at DESC);

-- Punishments

CREATE TABLE IF NOT EXISTS punishments (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    category VARCHAR(30) NOT NULL,
    severity VARCHAR(30) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    exp_penalty INTEGER NOT NULL,
    honor_loss INTEGER NOT NULL,
    effect_type VARCHAR(30),
    duration_days INTEGER NOT NULL DEFAULT 0,
    resolved BOOLEAN NOT NULL DEFAULT FALSE,
    resolved_at TIMESTAMPTZ,
    evidence JSONB,
    issued_by VARCHAR(50) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_punishments_player ON punishments (player_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_punishments_unresolved ON punishments (player_id, category) WHERE NOT resolved;

-- Status effects

CREATE TABLE IF NOT EXISTS status_effects (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    effect_type VARCHAR(30) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    exp_multiplier NUMERIC(4,2) NOT NULL,
    punishment_id BIGINT REFERENCES punishments(id) ON DELETE SET NULL,
    start_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    end_time TIMESTAMPTZ,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_status_effects_active ON status_effects (player_id) WHERE is_active;

-- Dungeons & attendance

CREATE TABLE IF NOT EXISTS dungeons (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    scheduled_date TIMESTAMPTZ NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
    exp_reward INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    dungeon_id BIGINT NOT NULL REFERENCES dungeons(id) ON DELETE CASCADE,
    attended BOOLEAN NOT NULL,
    exp_earned INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (player_id, dungeon_id)
);

CREATE INDEX IF NOT EXISTS idx_attendance_player_created ON attendance (player_id, created_at DESC);

-- Boss battles

CREATE TABLE IF NOT EXISTS boss_battles (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    boss_type VARCHAR(20) NOT NULL,
    name VARCHAR(100) NOT NULL,
    base_score INTEGER NOT NULL,
    bonus_applied INTEGER NOT NULL,
    final_score INTEGER NOT NULL,
    battle_date TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Sidequests & submissions

CREATE TABLE IF NOT EXISTS sidequests (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    due_date TIMESTAMPTZ NOT NULL,
    exp_reward INTEGER NOT NULL DEFAULT 0,
    late_exp_reward INTEGER NOT NULL DEFAULT 0,
    status VARCHAR(20) NOT NULL DEFAULT 'draft',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sidequest_submissions (
    id BIGSERIAL PRIMARY KEY,
    player_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    sidequest_id BIGINT NOT NULL REFERENCES sidequests(id) ON DELETE CASCADE,
    submitted_at TIMESTAMPTZ NOT NULL,
    grade INTEGER,
    exp_earned INTEGER NOT NULL DEFAULT 0,
    feedback TEXT,
    UNIQUE (player_id, sidequest_id)
);

-- Event audit log

CREATE TABLE IF NOT EXISTS event_logs (
    id BIGSERIAL PRIMARY KEY,
    event_type VARCHAR(50) NOT NULL,
    player_id UUID,
    payload JSONB NOT NULL,
    metadata JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_event_logs_type_created ON event_logs (event_type, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_event_logs_player ON event_logs (player_id, created_at DESC) WHERE player_id IS NOT NULL;

-- Seed level thresholds (cumulative EXP required per level)
INSERT INTO levels (level, exp_required, bonus_description) VALUES
(1, 0, ''),
(2, 100, ''),
(3, 250, ''),
(4, 450, ''),
(5, 700, ''),
(6, 1000, ''),
(7, 1400, ''),
(8, 1900, ''),
(9, 2500, ''),
(10, 3200, ''),
(11, 4000, ''),
(12, 5000, '')
ON CONFLICT (level) DO NOTHING;
`
