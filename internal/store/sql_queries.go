package store

// upsertEntriesSuffix turns the batched INSERT into an upsert keyed by the
// entry ID. The syntax is accepted by both SQLite and PostgreSQL, so one
// statement serves both drivers.
const upsertEntriesSuffix = `ON CONFLICT(id) DO UPDATE SET
	parent_id = excluded.parent_id,
	server_parent_id = excluded.server_parent_id,
	base_version = excluded.base_version,
	server_version = excluded.server_version,
	name = excluded.name,
	server_name = excluded.server_name,
	is_dir = excluded.is_dir,
	server_is_dir = excluded.server_is_dir,
	is_del = excluded.is_del,
	server_is_del = excluded.server_is_del,
	is_unsynced = excluded.is_unsynced,
	is_unapplied_update = excluded.is_unapplied_update,
	unique_client_tag = excluded.unique_client_tag,
	position = excluded.position,
	server_position = excluded.server_position,
	specifics = excluded.specifics,
	server_specifics = excluded.server_specifics,
	ctime = excluded.ctime,
	mtime = excluded.mtime`
