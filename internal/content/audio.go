package content

import (
	"github.com/aquihaydragonesgonzalo/hellesylt-crucero/internal/domain"
)

// Track set keys referenced from the itinerary.
const (
	TrackSetHellesylt          = "hellesylt"
	TrackSetGeirangerFerry     = "geiranger-ferry"
	TrackSetGeirangerBus       = "geiranger-bus"
	TrackSetGeirangerVillage   = "geiranger-village"
	TrackSetGeirangerDeparture = "geiranger-departure"
)

func trackSets() map[string]*domain.TrackSet {
	sets := []*domain.TrackSet{
		{
			Key:   TrackSetHellesylt,
			Title: "Hellesylt Audio Guide",
			Tracks: []domain.AudioTrack{
				{
					ID:    1,
					Title: "1. Arriving in the Fjord",
					Text:  "Welcome to Hellesylt. You are at the end of the Sunnylvsfjord, a side arm of the great Storfjord. There are no concrete terminals here: this natural harbour has sheltered boats since the Viking age, when wooden longships sought these calm emerald waters. The village counts barely three hundred inhabitants, guarded by mountains that rise almost vertically and shield the valley from the open sea. Before you go ashore, take a moment and watch the peaks reflected in the water. You are about to step into a place where nature is still fully in charge.",
				},
				{
					ID:    2,
					Title: "2. The Great Waterfall",
					Text:  "Now look for movement, right between the houses in the centre of the village. That is Hellesyltfossen, the literally roaring heart of Hellesylt. It is rare to see a waterfall of this volume cut straight through a settlement. The white water you see is glacial meltwater falling over granite polished by centuries of erosion, ending its journey right under your ship. Here is the tip for your visit: an old bridge crosses the fall halfway up. Go there. Stand on that bridge and the cold mist hits your face while the thunder of the water makes talking impossible. From the same spot, with the fjord and the ship behind, you get the best photograph of the whole cruise.",
				},
				{
					ID:    3,
					Title: "3. Architecture and Local Life",
					Text:  "Walking along the quay, look at the buildings: classic western-fjord architecture. Timber houses, steep roofs built to carry tonnes of winter snow, and the traditional colours. Oxide red was once the cheapest paint, made with fish blood and oil; ochre yellow came next, and white used to signal wealth. If you have time, find the Sunnylven church, a wooden building that has watched the fjord since 1859. If it is open, step inside: the smell of old timber and the silence are a balm. Hellesylt is not a place of stone monuments. It is a place of wood, water and human endurance.",
				},
				{
					ID:    4,
					Title: "4. Farewell and the Road Ahead",
					Text:  "A closing note about where you stand. Hellesylt is known as the gateway: many travellers disembark here to take the land route toward the famous Geirangerfjord, passing the deepest lake in Europe on the way. If you stay in Hellesylt instead, enjoy the luxury of time. Sit on a bench facing the water and watch the light change on the mountains every ten minutes. Here the show is not man-made; the sky provides it. Walk slowly, breathe deeply, and keep this landscape in your mind's eye until you are back on board.",
				},
				{
					ID:    5,
					Title: "BONUS: Hidden Legends",
					Text:  "Look at those mountains again, but this time do not look for peaks or snow. Look for faces, for crooked noses in the rock. Norse folklore says this landscape is not geology but a graveyard of trolls: giants who ruled the night, slow of thought, who lost track of time one evening, and the rule is sacred here, if the sun touches you, you turn to stone forever. The trolls are not alone. If you walk near the waterfall and hear a beautiful melody, beware of the Huldra, a forest creature of great beauty who lures lone travellers, and whose secret is a cow's tail. If you meet her, do not be afraid: greet her with respect and continue on your way. In Norway we say the landscape is alive, and that here we are guests in the home of the giants.",
				},
			},
		},
		{
			Key:   TrackSetGeirangerFerry,
			Title: "Geiranger Ferry Audio Guide",
			Tracks: []domain.AudioTrack{
				{
					ID:    1,
					Title: "1. Into the Fjord",
					Text:  "As the ferry pulls away from Hellesylt you are entering the heart of fjord Norway. The body of water ahead is the Geirangerfjord, a UNESCO World Heritage site since 2005 for its pristine, unaltered beauty. The walls around you plunge hundreds of meters below sea level, yet the water is so still it often looks like a mirror. What you will see in the next sixty minutes is a symphony of water and rock, with the highlights on either side of the ferry. You will be told where to look as each one comes.",
				},
				{
					ID:    2,
					Title: "2. The Bridal Veil",
					Text:  "Look now to port, the left side. The first star of the show is the Brudesloret waterfall, the Bridal Veil. Its fall is broad, but wind and rock disperse the water before it reaches the fjord, so it slides over the dark cliff like a thin layer of tulle. That is where the name comes from. It drops some three hundred meters, and on sunny days its mist hangs a very particular rainbow. It is one of the most elegant waterfalls in Norway, and only an announcement of what waits beyond the next bend.",
				},
				{
					ID:    3,
					Title: "3. The Seven Sisters",
					Text:  "Now look to starboard, the right side. What you see is majestic: the Seven Sisters, the most photographed waterfall in the whole fjord. Legend says they are seven beautiful sisters dancing on the mountainside. Whether snow or rain lets you see all seven at full strength, the carved rock tells you their scale. In spring, or after days of rain, the seven streams fall with such force that the mist seems to climb back into the sky. And it is a story of unrequited love that animates them, because the sisters drew the attention of one very persistent bachelor, who stands directly opposite.",
				},
				{
					ID:    4,
					Title: "4. The Suitor",
					Text:  "Turn around and look straight across from the Seven Sisters, to port. There stands the other protagonist: the Suitor, Friaren. Its irregular fall splits around a protruding rock, a shape the locals joke looks like a bottle of spirits. The legend says the Suitor courted each of the seven sisters and was turned down by every one of them, and has stood petrified and heartbroken opposite them ever since, unable to look away. This is the moment for your camera: the Seven Sisters and the Suitor facing each other across the fjord is the most iconic postcard of your trip.",
				},
				{
					ID:    5,
					Title: "5. The Skageflaa Farm and Arrival",
					Text:  "As the ferry closes on its destination, look up to starboard. On that small shelf hundreds of meters above the water sits what looks like a speck of colour on the cliff: the abandoned mountain farm of Skageflaa, one of many fjord farms once reachable only by wooden ladders or by boat. Life up there was hard and dangerous; children were tied with ropes so they would not fall into the fjord. It is a testament to Norwegian tenacity. Ahead of us the fjord is closing in and the village of Geiranger appears in the valley. Prepare to disembark; you have just sailed one of the most beautiful places on the planet. Tusen takk, and enjoy Geiranger.",
				},
			},
		},
		{
			Key:   TrackSetGeirangerBus,
			Title: "Panoramic Tour Audio Guide",
			Tracks: []domain.AudioTrack{
				{
					ID:    1,
					Title: "1. The Viewpoints",
					Text:  "To really grasp the scale of this place you have to climb. The village is lovely, but the views that made Geiranger famous are up on the road. There are three main viewpoints, and you should try to visit at least two. Flydalsjuvet is the famous one for the classic postcard: a modern platform and a protruding rock give you the perfect shot of the fjord with your ship at anchor, and access is fairly easy. Ornesvingen, the Eagle Bend, sits on the road that climbs out of the village and opens onto the outer fjord, with the Suitor and the Seven Sisters visible from above. It is a breathtaking last look as you leave Geiranger.",
				},
			},
		},
		{
			Key:   TrackSetGeirangerVillage,
			Title: "Geiranger Village Audio Guide",
			Tracks: []domain.AudioTrack{
				{
					ID:    1,
					Title: "1. The End of the Fjord",
					Text:  "Welcome to Geiranger, the final point of the fjord and the valley that gives it its name. The landscape is a natural amphitheatre with mountains rising all around you. Notice the colour of the water at the shore: that milky turquoise comes from glacial silt, rock ground to fine dust by moving ice and carried down by the Geirangelva river. The particles reflect light in a way that gives the water its unreal glow. Geiranger is small, picturesque and entirely devoted to the fjord experience. Remember, you are standing in the middle of a World Heritage site.",
				},
				{
					ID:    2,
					Title: "2. The Heart of the Village",
					Text:  "Geiranger is easy to cover on foot; its life concentrates around a couple of hotels and the main pier. Wander through the souvenir shops, but two stops give the place its flavour. The Geiranger church is a charming octagonal wooden church from 1842. And if you have a sweet tooth, do not miss the local chocolate shop, famous for handmade pralines that use local ingredients such as brown cheese or fjord herbs. Enjoy the quiet air, the smell of pine and salt water, before heading for the heights.",
				},
				{
					ID:    3,
					Title: "3. The Waterfall Walk",
					Text:  "If you want an immersive experience that tests your lungs, take the Fossevandring, the Waterfall Walk. The path starts right at the harbour and follows the Geirangelva river where it hurls itself over the Storfossen waterfall. It is a small marvel of engineering: more than three hundred steps and steel walkways climbing the side of the gorge, putting the force of the fall centimeters away. Not an easy walk, but short and worth every step. Pause on the panoramic bridges, feel the rock tremble and the wet mist on your face. At the top, after 327 steps, you are rewarded with the Norwegian Fjord Centre, an excellent place to learn how people lived in these valleys. A perfect two for one.",
				},
			},
		},
		{
			Key:   TrackSetGeirangerDeparture,
			Title: "Farewell Audio Guide",
			Tracks: []domain.AudioTrack{
				{
					ID:    1,
					Title: "1. Farewell to Geiranger",
					Text:  "Whether you strolled along the river or climbed to the heights, remember the force that made this place: Geiranger is a work of art carved by ice and water through the last glacial age. When it is time to board again, look once more at the turquoise water. That is the stardust of the glaciers, tangible proof of Norway's magic. Enjoy the crossing back, and as we say in Norway, ha det bra!",
				},
			},
		},
	}

	m := make(map[string]*domain.TrackSet, len(sets))
	for _, ts := range sets {
		m[ts.Key] = ts
	}
	return m
}

func pronunciations() []domain.Pronunciation {
	return []domain.Pronunciation{
		{Word: "Hellesylt", Phonetic: "/hɛləsʏlt/", Simplified: "HEL-le-sult", Meaning: "Sacred plateau"},
		{Word: "Geiranger", Phonetic: "/gɛɪrɑŋər/", Simplified: "GAY-rang-er", Meaning: "Fjord of the spear"},
		{Word: "Flydalsjuvet", Phonetic: "/flyːdɑlsjʉːvət/", Simplified: "FLU-dals-yu-vet", Meaning: "Flydal gorge"},
		{Word: "Ørnesvingen", Phonetic: "/œrnsvɪŋən/", Simplified: "ERN-sving-en", Meaning: "Eagle bend"},
		{Word: "Fjord", Phonetic: "/fjɔːr/", Simplified: "FYORD", Meaning: "Fjord"},
		{Word: "Foss", Phonetic: "/fɔs/", Simplified: "FOSS", Meaning: "Waterfall"},
		{Word: "Takk", Phonetic: "/tak/", Simplified: "TAK", Meaning: "Thank you"},
	}
}
