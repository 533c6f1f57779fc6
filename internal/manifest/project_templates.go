package manifest

const devScriptTemplate = `import uvicorn

from app.core.config import settings

if __name__ == "__main__":
    uvicorn.run("app.main:app", host=settings.HOST, port=settings.PORT, reload=True)
`

const prodScriptTemplate = `import uvicorn

from app.core.config import settings

if __name__ == "__main__":
    uvicorn.run("app.main:app", host=settings.HOST, port=settings.PORT, workers=4)
`

const conftestTemplate = `import pytest
from fastapi.testclient import TestClient

from app.main import app


@pytest.fixture
def client() -> TestClient:
    return TestClient(app)
`

const envFileTemplate = `# IMPORTANT: Change these values before deployment

# Project
TITLE="{{.Name}}"
DESCRIPTION="{{.Description}}"
VERSION="{{.Version}}"

# Debugging
DEBUG=True

# Server
HOST="0.0.0.0"
PORT=8000

# Database
DB_TYPE="{{.Database.Provider}}"
DB_USER="{{.Database.User}}"
DB_PASS="{{.Database.Password}}"
DB_HOST="{{.Database.Host}}"
DB_PORT={{.Database.Port}}
DB_NAME="{{.Database.Name}}"
`

const gitignoreTemplate = `# Environments
.venv/
.env

# Python
__pycache__/
*.py[cod]
*.egg-info/
.pytest_cache/
.ruff_cache/

# Databases
*.db
*.sqlite3

# Editors
.idea/
.vscode/
`

const readmeTemplate = `# {{.Name}}

{{.Description}}

## Getting started

Activate the virtual environment and start the development server:

` + "```sh" + `
source .venv/bin/activate
python scripts/dev.py
` + "```" + `

The API listens on http://0.0.0.0:8000 and serves interactive docs at /docs.
{{if eq .Database.Type "sql"}}
## Database

Connection settings live in ` + "`.env`" + ` ({{.Database.Provider}} by default).
Manage schema migrations with Alembic:

` + "```sh" + `
alembic revision --autogenerate -m "describe the change"
alembic upgrade head
` + "```" + `
{{end}}
## Tests

` + "```sh" + `
python -m pytest
` + "```" + `
`
