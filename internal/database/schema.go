package database

// One DDL constant per application.  Surrogate keys use AUTOINCREMENT so
// SQLite never reuses an id after a delete; every other column mirrors the
// store layout each app has always had.

// BooksSchema holds the book catalogue table.  Title and author are each
// unique across the whole collection.
const BooksSchema = `
CREATE TABLE IF NOT EXISTS books (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    title  VARCHAR(250) NOT NULL UNIQUE,
    author VARCHAR(250) NOT NULL UNIQUE,
    rating REAL NOT NULL
);`

// CafesSchema holds the cafe directory table.  coffee_price is the only
// nullable column.
const CafesSchema = `
CREATE TABLE IF NOT EXISTS cafes (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    name           VARCHAR(250) NOT NULL UNIQUE,
    map_url        VARCHAR(500) NOT NULL,
    img_url        VARCHAR(500) NOT NULL,
    location       VARCHAR(250) NOT NULL,
    seats          VARCHAR(250) NOT NULL,
    has_toilet     BOOLEAN NOT NULL,
    has_wifi       BOOLEAN NOT NULL,
    has_sockets    BOOLEAN NOT NULL,
    can_take_calls BOOLEAN NOT NULL,
    coffee_price   VARCHAR(250)
);`

// MoviesSchema holds the movie tracker table.  rating, ranking and review
// stay NULL until the user rates a movie; ranking is recomputed on every
// listing view.
const MoviesSchema = `
CREATE TABLE IF NOT EXISTS movies (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       VARCHAR(250) NOT NULL UNIQUE,
    year        INTEGER NOT NULL,
    description VARCHAR(750) NOT NULL,
    rating      REAL,
    ranking     INTEGER,
    review      VARCHAR(250),
    img_url     VARCHAR(250) NOT NULL
);`
