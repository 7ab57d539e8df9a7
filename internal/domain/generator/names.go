package generator

// fallbackNation supplies name pools for nationalities without their own.
const fallbackNation = "England"

// namePool holds the first-name and surname pools for one nationality.
// Nationalities absent from the map, or with an empty pool, fall back to
// the English pools.
type namePool struct {
	First []string
	Last  []string
}

var namePools = map[string]namePool{
	"England": {
		First: []string{"Jack", "Harry", "Oliver", "George", "Thomas", "James", "Callum", "Lewis"},
		Last:  []string{"Smith", "Taylor", "Brown", "Wilson", "Walker", "Wright", "Clarke", "Robinson"},
	},
	"Brazil": {
		First: []string{"Gabriel", "Lucas", "Matheus", "Rafael", "Thiago", "Vinicius", "Felipe", "Caio"},
		Last:  []string{"Silva", "Santos", "Oliveira", "Souza", "Pereira", "Costa", "Almeida", "Ribeiro"},
	},
	"Spain": {
		First: []string{"Alejandro", "Pablo", "Sergio", "Javier", "Iker", "Alvaro", "Dani", "Mikel"},
		Last:  []string{"Garcia", "Fernandez", "Lopez", "Martinez", "Sanchez", "Torres", "Ramos", "Navarro"},
	},
	"Italy": {
		First: []string{"Alessandro", "Lorenzo", "Matteo", "Francesco", "Davide", "Marco", "Andrea", "Luca"},
		Last:  []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Ricci", "Conti"},
	},
	"Germany": {
		First: []string{"Leon", "Lukas", "Felix", "Jonas", "Maximilian", "Niklas", "Timo", "Florian"},
		Last:  []string{"Muller", "Schmidt", "Schneider", "Fischer", "Weber", "Wagner", "Becker", "Hoffmann"},
	},
	"France": {
		First: []string{"Antoine", "Hugo", "Theo", "Lucas", "Nathan", "Kylian", "Adrien", "Maxime"},
		Last:  []string{"Martin", "Bernard", "Dubois", "Moreau", "Laurent", "Girard", "Lefevre", "Mercier"},
	},
	"Argentina": {
		First: []string{"Santiago", "Mateo", "Joaquin", "Facundo", "Agustin", "Franco", "Nicolas", "Lautaro"},
		Last:  []string{"Gonzalez", "Rodriguez", "Fernandez", "Lopez", "Martinez", "Diaz", "Alvarez", "Romero"},
	},
	"Netherlands": {
		First: []string{"Daan", "Sem", "Lars", "Thijs", "Jesse", "Ruben", "Sven", "Joris"},
		Last:  []string{"de Jong", "Jansen", "de Vries", "van den Berg", "Bakker", "Visser", "Smit", "Meijer"},
	},
	"Portugal": {
		First: []string{"Joao", "Diogo", "Tiago", "Goncalo", "Andre", "Ruben", "Bruno", "Rafael"},
		Last:  []string{"Silva", "Santos", "Ferreira", "Pereira", "Costa", "Rodrigues", "Martins", "Sousa"},
	},
	"Japan": {
		First: []string{"Haruto", "Yuto", "Sota", "Ren", "Kaito", "Takumi", "Daiki", "Shota"},
		Last:  []string{"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Nakamura", "Yamamoto"},
	},
	"South Korea": {
		First: []string{"Min-jun", "Seo-jun", "Ji-ho", "Ha-jun", "Do-yun", "Ji-hoon", "Sung-min", "Tae-yang"},
		Last:  []string{"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Cho", "Yoon"},
	},
	"Nigeria": {
		First: []string{"Chinedu", "Emeka", "Oluwaseun", "Ifeanyi", "Kelechi", "Obinna", "Tunde", "Chukwuemeka"},
		Last:  []string{"Okafor", "Okonkwo", "Adeyemi", "Eze", "Obi", "Nwachukwu", "Balogun", "Adebayo"},
	},
	"Turkey": {
		First: []string{"Emre", "Burak", "Mert", "Arda", "Cenk", "Hakan", "Ozan", "Kerem"},
		Last:  []string{"Yilmaz", "Kaya", "Demir", "Celik", "Sahin", "Aydin", "Arslan", "Dogan"},
	},
	"Poland": {
		First: []string{"Jakub", "Kacper", "Szymon", "Mateusz", "Bartosz", "Piotr", "Wojciech", "Krzysztof"},
		Last:  []string{"Nowak", "Kowalski", "Wisniewski", "Wojcik", "Kaminski", "Lewandowski", "Zielinski", "Szymanski"},
	},
	"Sweden": {
		First: []string{"Oscar", "Viktor", "Elias", "Hugo", "Axel", "Emil", "Gustav", "Filip"},
		Last:  []string{"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsson", "Olsson", "Svensson"},
	},
	"Mexico": {
		First: []string{"Diego", "Carlos", "Luis", "Jorge", "Miguel", "Raul", "Hector", "Andres"},
		Last:  []string{"Hernandez", "Garcia", "Martinez", "Gonzalez", "Rodriguez", "Perez", "Sanchez", "Ramirez"},
	},

	// First names only; surnames fall back to the English pool.
	"Scotland": {First: []string{"Callum", "Ewan", "Fraser", "Angus", "Rory", "Hamish"}},
	"Ireland":  {First: []string{"Sean", "Conor", "Cian", "Darragh", "Eoin", "Fionn"}},
	"Wales":    {First: []string{"Dylan", "Rhys", "Owain", "Gareth", "Ieuan", "Morgan"}},
}

// firstNames returns the first-name pool for a nationality, falling back
// to the English pool.
func firstNames(nationality string) []string {
	if pool, ok := namePools[nationality]; ok && len(pool.First) > 0 {
		return pool.First
	}
	return namePools[fallbackNation].First
}

// surnames returns the surname pool for a nationality, falling back to
// the English pool.
func surnames(nationality string) []string {
	if pool, ok := namePools[nationality]; ok && len(pool.Last) > 0 {
		return pool.Last
	}
	return namePools[fallbackNation].Last
}
