package catalog

import "movie-review/internal/data/entity"

var builtin = []entity.Movie{
	{
		ID:          157336,
		TMDBID:      157336,
		Title:       "Interstellar",
		Image:       "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		Description: "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
		Year:        2014,
		Genres:      []string{"Sci-Fi", "Drama", "Adventure"},
		Directors:   []string{"Christopher Nolan"},
		Rating:      5,
		Runtime:     "169 min",
	},
	{
		ID:          27205,
		TMDBID:      27205,
		Title:       "Inception",
		Image:       "https://image.tmdb.org/t/p/w500/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
		Description: "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance at redemption if he can successfully perform an inception - planting an idea rather than stealing one.",
		Year:        2010,
		Genres:      []string{"Action", "Sci-Fi", "Thriller"},
		Directors:   []string{"Christopher Nolan"},
		Rating:      5,
		Runtime:     "148 min",
	},
	{
		ID:          155,
		TMDBID:      155,
		Title:       "The Dark Knight",
		Image:       "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		Description: "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and District Attorney Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets.",
		Year:        2008,
		Genres:      []string{"Action", "Crime", "Drama"},
		Directors:   []string{"Christopher Nolan"},
		Rating:      5,
		Runtime:     "152 min",
	},
	{
		ID:          475557,
		TMDBID:      475557,
		Title:       "Joker",
		Image:       "https://m.media-amazon.com/images/M/MV5BNGVjNWI4ZGUtNzE0MS00YTJmLWE0ZDctN2ZiYTk2YmI3NTYyXkEyXkFqcGdeQXVyMTkxNjUyNQ@@._V1_SX300.jpg",
		Description: "During the 1980s, a failed stand-up comedian is driven insane and turns to a life of crime and chaos in Gotham City while becoming an infamous psychopathic crime figure.",
		Year:        2019,
		Genres:      []string{"Crime", "Drama", "Thriller"},
		Directors:   []string{"Todd Phillips"},
		Rating:      4,
		Runtime:     "122 min",
	},
	{
		ID:          299534,
		TMDBID:      299534,
		Title:       "Avengers: Endgame",
		Image:       "https://image.tmdb.org/t/p/w500/or06FN3Dka5tukK1e9sl16pB3iy.jpg",
		Description: "After the devastating events of Avengers: Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions and restore balance to the universe.",
		Year:        2019,
		Genres:      []string{"Action", "Adventure", "Drama"},
		Directors:   []string{"Anthony Russo", "Joe Russo"},
		Rating:      5,
		Runtime:     "181 min",
	},
	{
		ID:          597,
		TMDBID:      597,
		Title:       "Titanic",
		Image:       "https://image.tmdb.org/t/p/w500/9xjZS2rlVxm8SFx8kPC3aIGCOYQ.jpg",
		Description: "101-year-old Rose DeWitt Bukater tells the story of her life aboard the Titanic, 84 years later. A young Rose boards the ship with her mother and fiancé. Meanwhile, Jack Dawson and Fabrizio De Rossi win third-class tickets aboard the ship.",
		Year:        1997,
		Genres:      []string{"Drama", "Romance"},
		Directors:   []string{"James Cameron"},
		Rating:      5,
		Runtime:     "194 min",
	},
	{
		ID:          19995,
		TMDBID:      19995,
		Title:       "Avatar",
		Image:       "https://image.tmdb.org/t/p/w500/jRXYjXNq0Cs2TcJjLkki24MLp7u.jpg",
		Description: "In the 22nd century, a paraplegic Marine is dispatched to the moon Pandora on a unique mission, but becomes torn between following orders and protecting an alien civilization.",
		Year:        2009,
		Genres:      []string{"Action", "Adventure", "Fantasy"},
		Directors:   []string{"James Cameron"},
		Rating:      4,
		Runtime:     "162 min",
	},
	{
		ID:          98,
		TMDBID:      98,
		Title:       "Gladiator",
		Image:       "https://image.tmdb.org/t/p/w500/ty8TGRuvJLPUmAR1H1nRIsgwvim.jpg",
		Description: "When a Roman General is betrayed, and his family murdered by an emperor's corrupt son, he comes to Rome as a gladiator to seek revenge.",
		Year:        2000,
		Genres:      []string{"Action", "Adventure", "Drama"},
		Directors:   []string{"Ridley Scott"},
		Rating:      5,
		Runtime:     "155 min",
	},
	{
		ID:          13,
		TMDBID:      13,
		Title:       "Forrest Gump",
		Image:       "https://image.tmdb.org/t/p/w500/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
		Description: "A man with a low IQ has accomplished great things in his life and been present during significant historic events - in each case, far exceeding what anyone imagined he could do. Yet, despite all the things he has attained, his true love eludes him.",
		Year:        1994,
		Genres:      []string{"Drama", "Romance"},
		Directors:   []string{"Robert Zemeckis"},
		Rating:      5,
		Runtime:     "142 min",
	},
	{
		ID:          11216,
		TMDBID:      11216,
		Title:       "The Prestige",
		Image:       "https://m.media-amazon.com/images/M/MV5BMjA4NDI0MTIxNF5BMl5BanBnXkFtZTYwNTM0MzY2._V1_SX300.jpg",
		Description: "Two friends and fellow magicians become bitter enemies after a sudden tragedy. As they devote themselves to this rivalry, they make sacrifices that bring them fame but with terrible consequences.",
		Year:        2006,
		Genres:      []string{"Drama", "Mystery", "Thriller"},
		Directors:   []string{"Christopher Nolan"},
		Rating:      5,
		Runtime:     "130 min",
	},
	{
		ID:          603,
		TMDBID:      603,
		Title:       "The Matrix",
		Image:       "https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		Description: "Set in the 22nd century, The Matrix tells the story of a computer hacker who joins a group of underground insurgents fighting the vast and powerful computers who now rule the earth.",
		Year:        1999,
		Genres:      []string{"Action", "Sci-Fi"},
		Directors:   []string{"Lana Wachowski", "Lilly Wachowski"},
		Rating:      5,
		Runtime:     "136 min",
	},
	{
		ID:          680,
		TMDBID:      680,
		Title:       "Pulp Fiction",
		Image:       "https://image.tmdb.org/t/p/w500/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		Description: "A burger-loving hit man, his philosophical partner, a drug-addled gangster's moll, and a washed-up boxer converge in this sprawling, comedic crime caper. Their adventures unfurl in three stories that ingeniously trip back and forth in time.",
		Year:        1994,
		Genres:      []string{"Crime", "Drama"},
		Directors:   []string{"Quentin Tarantino"},
		Rating:      5,
		Runtime:     "154 min",
	},
	{
		ID:          238,
		TMDBID:      238,
		Title:       "The Godfather",
		Image:       "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		Description: "Spanning the years 1945 to 1955, a chronicle of the fictional Italian-American Corleone crime family. When organized crime family patriarch, Vito Corleone barely survives an attempt on his life, his youngest son, Michael steps in to take care of the would-be killers, launching a campaign of bloody revenge.",
		Year:        1972,
		Genres:      []string{"Crime", "Drama"},
		Directors:   []string{"Francis Ford Coppola"},
		Rating:      5,
		Runtime:     "175 min",
	},
	{
		ID:          550,
		TMDBID:      550,
		Title:       "Fight Club",
		Image:       "https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		Description: "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy. Their concept catches on, with underground 'fight clubs' forming in every town, until an eccentric gets in the way and ignites an out-of-control spiral toward oblivion.",
		Year:        1999,
		Genres:      []string{"Drama"},
		Directors:   []string{"David Fincher"},
		Rating:      5,
		Runtime:     "139 min",
	},
	{
		ID:          278,
		TMDBID:      278,
		Title:       "The Shawshank Redemption",
		Image:       "https://image.tmdb.org/t/p/w500/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
		Description: "Framed in the 1940s for the double murder of his wife and her lover, upstanding banker Andy Dufresne begins a new life at the Shawshank prison, where he puts his accounting skills to work for an amoral warden.",
		Year:        1994,
		Genres:      []string{"Drama"},
		Directors:   []string{"Frank Darabont"},
		Rating:      5,
		Runtime:     "142 min",
	},
	{
		ID:          496243,
		TMDBID:      496243,
		Title:       "Parasite",
		Image:       "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		Description: "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		Year:        2019,
		Genres:      []string{"Comedy", "Drama", "Thriller"},
		Directors:   []string{"Bong Joon-ho"},
		Rating:      5,
		Runtime:     "132 min",
	},
	{
		ID:          438631,
		TMDBID:      438631,
		Title:       "Dune",
		Image:       "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
		Description: "Paul Atreides leads a rebellion to restore his family's honor after House Atreides is overthrown. He travels to the most dangerous planet in the universe to ensure the future of his family and his people as malevolent forces explode into conflict over the planet's exclusive supply of the most precious resource in existence.",
		Year:        2021,
		Genres:      []string{"Sci-Fi", "Adventure"},
		Directors:   []string{"Denis Villeneuve"},
		Rating:      4,
		Runtime:     "155 min",
	},
	{
		ID:          122,
		TMDBID:      122,
		Title:       "The Lord of the Rings: The Return of the King",
		Image:       "https://image.tmdb.org/t/p/w500/rCzpDGLbOoPwLjy3OAm5NUPOTrC.jpg",
		Description: "Aragorn is revealed as the heir to the ancient kings as he, Gandalf and the other members of the broken fellowship struggle to save Gondor from Sauron's forces. Meanwhile, Frodo and Sam take the ring closer to the heart of Mordor, the dark lord's realm.",
		Year:        2003,
		Genres:      []string{"Adventure", "Drama", "Fantasy"},
		Directors:   []string{"Peter Jackson"},
		Rating:      5,
		Runtime:     "201 min",
	},
	{
		ID:          244786,
		TMDBID:      244786,
		Title:       "Whiplash",
		Image:       "https://image.tmdb.org/t/p/w500/7fn624j5lj3xTme2SgiLCeuedmO.jpg",
		Description: "Under the direction of a ruthless instructor, a talented young drummer begins to pursue perfection at any cost, even his humanity.",
		Year:        2014,
		Genres:      []string{"Drama", "Music"},
		Directors:   []string{"Damien Chazelle"},
		Rating:      5,
		Runtime:     "107 min",
	},
	{
		ID:          76341,
		TMDBID:      76341,
		Title:       "Mad Max: Fury Road",
		Image:       "https://m.media-amazon.com/images/M/MV5BN2EwM2I5OWMtMGQyMi00Zjg1LWJkNTctZTdjYTA4OGUwZjMyXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_SX300.jpg",
		Description: "An apocalyptic story set in the furthest reaches of our planet, in a stark desert landscape where humanity is broken, and most everyone is crazed fighting for the necessities of life. Within this world exist two rebels on the run who just might be able to restore order.",
		Year:        2015,
		Genres:      []string{"Action", "Adventure", "Sci-Fi"},
		Directors:   []string{"George Miller"},
		Rating:      5,
		Runtime:     "120 min",
	},
}
