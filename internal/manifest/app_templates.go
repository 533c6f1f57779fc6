package manifest

const mainTemplate = `from fastapi import FastAPI

from app.api.routes import router
from app.core.config import settings
from app.core.exceptions import register_exception_handlers
from app.core.logger import get_logger

logger = get_logger(__name__)


def create_app() -> FastAPI:
    app = FastAPI(
        title=settings.TITLE,
        description=settings.DESCRIPTION,
        version=settings.VERSION,
        debug=settings.DEBUG,
    )
    app.include_router(router)
    register_exception_handlers(app)
    logger.info("application ready")
    return app


app = create_app()
`

const routesTemplate = `from fastapi import APIRouter

from app.schemas.health import HealthStatus

router = APIRouter()


@router.get("/health", response_model=HealthStatus)
async def health() -> HealthStatus:
    return HealthStatus(status="ok", version="{{.Version}}")
`

const configTemplate = `from functools import lru_cache

from pydantic_settings import BaseSettings, SettingsConfigDict


class Settings(BaseSettings):
    model_config = SettingsConfigDict(env_file=".env", extra="ignore")

    TITLE: str = "{{.Name}}"
    DESCRIPTION: str = "{{.Description}}"
    VERSION: str = "{{.Version}}"

    DEBUG: bool = True
    HOST: str = "0.0.0.0"
    PORT: int = 8000

    DB_TYPE: str = "{{.Database.Provider}}"
    DB_USER: str = "{{.Database.User}}"
    DB_PASS: str = "{{.Database.Password}}"
    DB_HOST: str = "{{.Database.Host}}"
    DB_PORT: int = {{.Database.Port}}
    DB_NAME: str = "{{.Database.Name}}"


@lru_cache
def get_settings() -> Settings:
    return Settings()


settings = get_settings()
`

const loggerTemplate = `import logging
import sys

from app.core.config import settings

_FORMAT = "%(asctime)s | %(levelname)s | %(name)s | %(message)s"


def get_logger(name: str) -> logging.Logger:
    logger = logging.getLogger(name)
    if logger.handlers:
        return logger
    handler = logging.StreamHandler(sys.stdout)
    handler.setFormatter(logging.Formatter(_FORMAT))
    logger.addHandler(handler)
    logger.setLevel(logging.DEBUG if settings.DEBUG else logging.INFO)
    return logger
`

const errorsTemplate = `class AppError(Exception):
    """Base error for {{.Name}}."""

    status_code = 500
    detail = "Internal server error"

    def __init__(self, detail: str | None = None):
        super().__init__(detail or self.detail)
        if detail:
            self.detail = detail


class NotFoundError(AppError):
    status_code = 404
    detail = "Resource not found"


class ConflictError(AppError):
    status_code = 409
    detail = "Resource already exists"
`

const exceptionsTemplate = `from fastapi import FastAPI, Request
from fastapi.responses import JSONResponse

from app.core.errors import AppError


def register_exception_handlers(app: FastAPI) -> None:
    @app.exception_handler(AppError)
    async def app_error_handler(request: Request, exc: AppError) -> JSONResponse:
        return JSONResponse(
            status_code=exc.status_code,
            content={"detail": exc.detail},
        )
`

const healthSchemaTemplate = `from pydantic import BaseModel


class HealthStatus(BaseModel):
    status: str
    version: str
`
