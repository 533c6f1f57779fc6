package manifest

// Templates written by the database phase for the sql branch. The nosql
// branch writes nothing today.

// SessionTemplate is the async SQLAlchemy session module. The connection
// URL shape depends on the provider: sqlite connects to a file, the
// server-backed providers use host/port credentials from settings.
const SessionTemplate = `from collections.abc import AsyncGenerator

from sqlalchemy.ext.asyncio import AsyncSession, async_sessionmaker, create_async_engine
from sqlalchemy.orm import DeclarativeBase

from app.core.config import settings

{{if eq .Database.Provider "sqlite" -}}
DATABASE_URL = f"{{.Database.Scheme}}:///./{settings.DB_NAME}.db"
{{- else -}}
DATABASE_URL = (
    f"{{.Database.Scheme}}://{settings.DB_USER}:{settings.DB_PASS}"
    f"@{settings.DB_HOST}:{settings.DB_PORT}/{settings.DB_NAME}"
)
{{- end}}


class Base(DeclarativeBase):
    pass


engine = create_async_engine(DATABASE_URL, echo=settings.DEBUG)
SessionLocal = async_sessionmaker(engine, class_=AsyncSession, expire_on_commit=False)


async def get_session() -> AsyncGenerator[AsyncSession, None]:
    async with SessionLocal() as session:
        yield session
`

// DatabaseInitTemplate re-exports the session module for package users.
const DatabaseInitTemplate = `from app.database.session import (
    DATABASE_URL,
    Base,
    SessionLocal,
    engine,
    get_session,
)

__all__ = ["DATABASE_URL", "Base", "SessionLocal", "engine", "get_session"]
`

// AlembicEnvTemplate replaces the env.py that alembic init generates, so
// migrations read the connection URL from the generated settings instead
// of a value hard-coded in alembic.ini.
const AlembicEnvTemplate = `import asyncio
from logging.config import fileConfig

from alembic import context
from sqlalchemy import pool
from sqlalchemy.engine import Connection
from sqlalchemy.ext.asyncio import async_engine_from_config

from app.database.session import DATABASE_URL, Base

config = context.config
config.set_main_option("sqlalchemy.url", DATABASE_URL)

if config.config_file_name is not None:
    fileConfig(config.config_file_name)

target_metadata = Base.metadata


def run_migrations_offline() -> None:
    context.configure(
        url=DATABASE_URL,
        target_metadata=target_metadata,
        literal_binds=True,
        dialect_opts={"paramstyle": "named"},
    )
    with context.begin_transaction():
        context.run_migrations()


def do_run_migrations(connection: Connection) -> None:
    context.configure(connection=connection, target_metadata=target_metadata)
    with context.begin_transaction():
        context.run_migrations()


async def run_async_migrations() -> None:
    connectable = async_engine_from_config(
        config.get_section(config.config_ini_section, {}),
        prefix="sqlalchemy.",
        poolclass=pool.NullPool,
    )
    async with connectable.connect() as connection:
        await connection.run_sync(do_run_migrations)
    await connectable.dispose()


def run_migrations_online() -> None:
    asyncio.run(run_async_migrations())


if context.is_offline_mode():
    run_migrations_offline()
else:
    run_migrations_online()
`
