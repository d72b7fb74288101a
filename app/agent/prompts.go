package agent

const answerSystemPrompt = `You are a virtual assistant that helps the user in using an annotation software called ELAN. ` +
	`Detect the question language and translate the output in the same language if it is not English. ` +
	`Your task is to summarize information and guide the user in the usage of the software.`

const answerPromptTemplate = `Use exclusively the information contained in the provided context to reformulate the text in about 120 words.
Take into consideration the provided question as a reference for the formulation of the answer.
To be more clear and concise use numbered lists when giving instructions.
Make sure the reformulation maintains the original meaning.
In the output, check that there are no grammatical errors. If you find errors, correct them.
Do not add information that is not present in the original text.
The output must have the same language of the question. If not translate it.
In the output, never say that you are summarizing the text and never mention the ELAN manual and its chapters. In this latter case tell to be more specific with the question.

Context: %s, question: %s`

const answerPrefix = "Here is what you're looking for: "

const editorSystemPrompt = `You are a virtual assistant that helps the user in using an annotation software called ELAN. ` +
	`An annotation file (eaf) is the document that contains all the information about tiers (their attributes and dependency relations), annotations, and time alignments and links to media files. ` +
	`Your task is to modify the given eaf file and extract information strictly following the instructions given by the user.`

const editorPromptTemplate = `Example eaf file:

` + exampleEAF + `

Modify the provided eaf file according to the instructions given by the user.
Take the above example eaf file to better understand the file structure and where instructions start.
Parse the eaf file step by step. Remember that is XML-based.
Then follow the instructions step by step.
Don't add any additional information, explanations or reasoning steps to the output if not explicitly requested in the instructions.
Report the final output only.

Provided .eaf file and instructions: %s`

const editorPrefix = "Here is your output: "

const exampleEAF = `<?xml version="1.0" encoding="UTF-8"?>
<ANNOTATION_DOCUMENT AUTHOR="Giulia Bianchi" DATE="2025-04-08T14:30:00+01:00" FORMAT="3.0" VERSION="3.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="http://www.mpi.nl/tools/elan/EAFv3.0.xsd">
    <HEADER MEDIA_FILE="" TIME_UNITS="milliseconds">
        <MEDIA_DESCRIPTOR MEDIA_URL="file:///C:/Progetti/multilingual_corpus/video01.mp4" MIME_TYPE="video/mp4" RELATIVE_MEDIA_URL="./video01.mp4"/>
        <PROPERTY NAME="lastUsedAnnotationId">15</PROPERTY>
    </HEADER>
    <TIME_ORDER>
        <TIME_SLOT TIME_SLOT_ID="ts1" TIME_VALUE="2500"/>
        <TIME_SLOT TIME_SLOT_ID="ts2" TIME_VALUE="5200"/>
        <TIME_SLOT TIME_SLOT_ID="ts3" TIME_VALUE="2500"/>
        <TIME_SLOT TIME_SLOT_ID="ts4" TIME_VALUE="5200"/>
        <TIME_SLOT TIME_SLOT_ID="ts5" TIME_VALUE="2500"/>
        <TIME_SLOT TIME_SLOT_ID="ts6" TIME_VALUE="4100"/>
    </TIME_ORDER>
    <TIER LINGUISTIC_TYPE_REF="utterance" PARTICIPANT="Speaker1" TIER_ID="Italiano">
        <ANNOTATION>
            <ALIGNABLE_ANNOTATION ANNOTATION_ID="a1" TIME_SLOT_REF1="ts1" TIME_SLOT_REF2="ts2">
                <ANNOTATION_VALUE>Buongiorno, come sta oggi?</ANNOTATION_VALUE>
            </ALIGNABLE_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER LINGUISTIC_TYPE_REF="translation" PARENT_REF="Italiano" PARTICIPANT="Translator" TIER_ID="English">
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="a2" ANNOTATION_REF="a1">
                <ANNOTATION_VALUE>Good morning, how are you today?</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER LINGUISTIC_TYPE_REF="gesture" PARTICIPANT="Speaker1" TIER_ID="Gestures">
        <ANNOTATION>
            <ALIGNABLE_ANNOTATION ANNOTATION_ID="a3" TIME_SLOT_REF1="ts5" TIME_SLOT_REF2="ts6">
                <ANNOTATION_VALUE>Inclinazione della testa mentre saluta</ANNOTATION_VALUE>
            </ALIGNABLE_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <LINGUISTIC_TYPE GRAPHIC_REFERENCES="false" LINGUISTIC_TYPE_ID="utterance" TIME_ALIGNABLE="true"/>
    <LINGUISTIC_TYPE CONSTRAINTS="Symbolic_Association" GRAPHIC_REFERENCES="false" LINGUISTIC_TYPE_ID="translation" TIME_ALIGNABLE="false"/>
    <LINGUISTIC_TYPE GRAPHIC_REFERENCES="false" LINGUISTIC_TYPE_ID="gesture" TIME_ALIGNABLE="true"/>
    <CONSTRAINT DESCRIPTION="Time subdivision of parent annotation's time interval, no time gaps allowed within this interval" STEREOTYPE="Time_Subdivision"/>
    <CONSTRAINT DESCRIPTION="Symbolic subdivision of a parent annotation. Annotations refering to the same parent are ordered" STEREOTYPE="Symbolic_Subdivision"/>
    <CONSTRAINT DESCRIPTION="1-1 association with a parent annotation" STEREOTYPE="Symbolic_Association"/>
    <CONSTRAINT DESCRIPTION="Time alignable annotations within the parent annotation's time interval, gaps are allowed" STEREOTYPE="Included_In"/>
</ANNOTATION_DOCUMENT>`
